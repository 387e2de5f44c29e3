package autofill

import (
	"log"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
)

// ExpandHome expands ~ to its proper path, where appropriate. Paths typed at
// the interactive prompt also lose any surrounding quotes that a terminal
// drag-and-drop adds.
func ExpandHome(path string) string {
	path = strings.TrimSpace(path)
	path = strings.Trim(path, `"'`)

	if strings.HasPrefix(path, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		path = filepath.Join(usr.HomeDir, (path)[2:])
	}

	return path
}
