// pkg/paths/classify_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Pin down the classification rules and their priority order

package paths

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Format
		wantOK bool
	}{
		// Windows
		{name: "windows drive path", input: `C:\Users\a\f.txt`, want: Windows, wantOK: true},
		{name: "lowercase drive", input: `d:\data`, want: Windows, wantOK: true},
		{name: "bare drive", input: `C:`, want: Windows, wantOK: true},
		{name: "drive root", input: `E:\`, want: Windows, wantOK: true},
		{name: "driveless rooted", input: `\Users\test\`, want: Windows, wantOK: true},
		{name: "relative backslash", input: `docs\readme.md`, want: Windows, wantOK: true},
		{name: "unc share", input: `\\server\share\x`, want: Windows, wantOK: true},
		{name: "colon after drive", input: `C:\a:b`, wantOK: false},
		{name: "reserved question mark", input: `C:\what?.txt`, wantOK: false},
		{name: "reserved pipe", input: `a\b|c`, wantOK: false},
		{name: "reserved quote", input: `C:\"quoted"`, wantOK: false},

		// Unix
		{name: "absolute unix", input: "/home/a/f.txt", want: Unix, wantOK: true},
		{name: "root", input: "/", want: Unix, wantOK: true},
		{name: "relative unix", input: "src/main.go", want: Unix, wantOK: true},
		{name: "slash converted windows", input: "C:/Users/test", want: Unix, wantOK: true},
		{name: "mixed separators prefer unix", input: `C:\a/b`, want: Unix, wantOK: true},
		{name: "double slash", input: "/home//a", wantOK: false},
		{name: "mnt with long name", input: "/mnt/data/x", want: Unix, wantOK: true},
		{name: "mnt without drive", input: "/mnt", want: Unix, wantOK: true},

		// WSL
		{name: "wsl path", input: "/mnt/c/Users/a", want: WSL, wantOK: true},
		{name: "wsl drive only", input: "/mnt/c", want: WSL, wantOK: true},
		{name: "wsl trailing slash", input: "/mnt/c/", want: WSL, wantOK: true},
		{name: "wsl upper drive", input: "/mnt/D/games", want: WSL, wantOK: true},
		{name: "wsl double slash", input: "/mnt/c//Users", wantOK: false},

		// Not paths
		{name: "empty", input: "", wantOK: false},
		{name: "plain word", input: "hello", wantOK: false},
		{name: "sentence", input: "copy this text", wantOK: false},
		{name: "http url", input: "http://example.com/a", wantOK: false},
		{name: "https url upper", input: "HTTPS://example.com/a", wantOK: false},
		{name: "ftp url", input: "ftp:/files/a", wantOK: false},
		{name: "sftp url", input: `sftp:\host\dir`, wantOK: false},
		{name: "file url", input: "file:/C:/x", wantOK: false},
		{name: "newline", input: "/home/a\n/home/b", wantOK: false},
		{name: "trailing newline", input: "/home/a\n", wantOK: false},
		{name: "carriage return", input: "C:\\a\r", wantOK: false},
		{name: "nul byte", input: "/home/a\x00b", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestClassify_RejectsLineBreaksAndNul(t *testing.T) {
	bases := []string{`C:\Users\a`, "/home/a", "/mnt/c/a", `C:`, "a/b"}
	for _, base := range bases {
		for _, bad := range []string{"\n", "\r", "\x00", "\r\n"} {
			for _, at := range []int{0, len(base) / 2, len(base)} {
				input := base[:at] + bad + base[at:]
				_, ok := Classify(input)
				assert.False(t, ok, "expected %q to be rejected", input)
			}
		}
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		input  string
		format Format
		want   bool
	}{
		{"/mnt/c/x", WSL, true},
		{"/mnt/c/x", Unix, true},
		{"/mnt/c/x", Windows, false},
		{`C:\x`, Windows, true},
		{`C:\x`, Unix, false},
		{"C:/x", Unix, true},
		{"C:/x", WSL, false},
		{"/", Unix, true},
		{"C:", Windows, true},
		{"C:", Unix, false},
		{"http://x/y", Unix, false},
		{"/x", Format(0), false},
	}

	for _, tt := range tests {
		t.Run(tt.format.String()+" "+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.input, tt.format))
		})
	}
}

func TestClassify_LongInput(t *testing.T) {
	long := "/" + strings.Repeat("segment/", 2000) + "end"
	got, ok := Classify(long)
	assert.True(t, ok)
	assert.Equal(t, Unix, got)
}
