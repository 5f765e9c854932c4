package main

import (
	"fmt"
	"os"

	"github.com/Vovadm/exammath.ru/core"
	"github.com/Vovadm/exammath.ru/services/logger"
)

var logger core.Logger

func main() {
	std := logsvc.NewWriterLogger(os.Stderr, "MATHFMT : ", core.Conf.GetString("logLevel"))
	logger = logsvc.New(std)

	cli := commandLine{
		logger:  logger,
		stdin:   os.Stdin,
		stdinFd: int(os.Stdin.Fd()),
		stdout:  os.Stdout,
	}
	err := cli.run(os.Args)
	if rl, ok := logger.(*logsvc.RollbarLogger); ok {
		rl.Wait()
	}
	if err != nil {
		if err != errHelp {
			logger.Error(fmt.Sprintf("error: %s", err), err)
		}
		os.Exit(1)
	}
}
