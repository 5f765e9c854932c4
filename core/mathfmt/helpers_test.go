package mathfmt

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// assertMarkup fails with a per-tag unified diff when got differs from want.
func assertMarkup(t *testing.T, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(splitTags(want)),
		B:        difflib.SplitLines(splitTags(got)),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		t.Fatalf("GetUnifiedDiffString() failed: %v", err)
	}
	t.Errorf("markup mismatch:\n%s", diff)
}

func splitTags(s string) string {
	return strings.ReplaceAll(s, "><", ">\n<") + "\n"
}

// expected fragments, written out literally

func vecAB() string {
	return `<span class="inline-block text-center italic text-blue-900 align-baseline">` +
		`<span class="block h-1.5 leading-none text-center -mb-px">` +
		`<svg width="18" height="6" viewBox="0 0 18 6" fill="none" class="block mx-auto">` +
		`<line x1="0" y1="3" x2="16" y2="3" stroke="#1e3a8a" stroke-width="1.2"/>` +
		`<polyline points="13,1 17,3 13,5" stroke="#1e3a8a" stroke-width="1.2" fill="none"/>` +
		`</svg></span><span class="block">AB</span></span>`
}

func frac(num, den string) string {
	return `<span class="inline-flex flex-col items-center align-middle text-blue-900 mx-0.5 leading-tight">` +
		`<span class="px-1 pb-0.5 border-b border-blue-900">` + num + `</span>` +
		`<span class="px-1 pt-0.5">` + den + `</span></span>`
}

func nthRoot(idx, rad string) string {
	return `<span class="inline-flex items-end align-middle text-blue-900 mx-0.5">` +
		`<span class="text-[0.6em] self-start mr-[-2px] mt-0.5">` + idx + `</span>` +
		`<span class="text-lg leading-none mr-[-1px]">√</span>` +
		`<span class="border-t-2 border-blue-900 px-1 mt-px">` + rad + `</span></span>`
}

func sqrt(rad string) string {
	return `<span class="inline-flex items-end align-middle text-blue-900 mx-0.5">` +
		`<span class="text-lg leading-none mr-[-1px]">√</span>` +
		`<span class="border-t-2 border-blue-900 px-1 mt-px">` + rad + `</span></span>`
}

func sup(s string) string { return `<sup class="text-xs text-blue-900">` + s + `</sup>` }

func sub(s string) string { return `<sub class="text-xs text-blue-900">` + s + `</sub>` }

func img(src string) string {
	return `<img class="inline-block align-middle max-h-7 mx-0.5" src="` + src + `" alt="формула" />`
}
