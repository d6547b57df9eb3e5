package lib

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	vlib "github.com/mcuadros/go-version"
)

type KiCadInterface struct {
	binPath string
}

/*
Locate the newest installed KiCad. kicad-cli on PATH wins; otherwise
the versioned install folders are scanned and the highest version is
taken.
*/
func NewKiCadInterface() (*KiCadInterface, error) {
	if path, err := exec.LookPath("kicad-cli"); err == nil {
		return &KiCadInterface{filepath.Dir(path)}, nil
	}

	rootDir := ""
	switch runtime.GOOS {
	case "windows":
		rootDir = filepath.Join(os.Getenv("ProgramFiles"), "KiCad")
	case "darwin":
		rootDir = "/Applications/KiCad"
	default:
		return nil, errors.New("kicad-cli not found on PATH")
	}

	versions, err := os.ReadDir(rootDir)
	if err != nil {
		return nil, err
	}

	if len(versions) == 0 {
		return nil, errors.New("no KiCad versions found in program folder")
	}

	latestVersion := "0.0.1"
	for _, e := range versions {
		version := e.Name()
		if vlib.CompareSimple(latestVersion, version) == -1 {
			latestVersion = version
		}
	}

	binPath := filepath.Join(rootDir, latestVersion, "bin")
	cli := filepath.Join(binPath, "kicad-cli")
	if runtime.GOOS == "windows" {
		cli += ".exe"
	}

	if _, err := os.Stat(cli); err != nil {
		return nil, errors.New("KiCad binPath does not exist or does not have kicad-cli")
	}

	return &KiCadInterface{binPath}, nil
}

func (ki *KiCadInterface) GetBinPath() string {
	return ki.binPath
}

func (ki *KiCadInterface) ExecuteCommand(args []string, cwd string) error {
	cmd := exec.Command(
		filepath.Join(ki.binPath, "kicad-cli"), args...,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Dir = cwd

	return cmd.Run()
}
