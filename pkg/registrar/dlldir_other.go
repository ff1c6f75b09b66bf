//go:build !windows

// pkg/registrar/dlldir_other.go
package registrar

import "errors"

var errNoDLLDirectoryAPI = errors.New("dll-directory registration is only available on windows")

func addDLLDirectory(dir string) error {
	return errNoDLLDirectoryAPI
}
