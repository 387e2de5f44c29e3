// compileinfoprint is imported by commands for the side effect of printing
// the build revision to os.Stderr before anything else is logged.
package compileinfoprint

import "github.com/the-fungus-among-us/GSC-form-autofill/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
