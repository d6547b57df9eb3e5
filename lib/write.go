package lib

import (
	"os"
	"strings"
)

/*
Artifact kinds pick the on-disk file extension; the emitters only
ever return strings
*/
type ArtifactKind string

const (
	SymbolArtifact    ArtifactKind = "symbol"
	FootprintArtifact ArtifactKind = "footprint"
)

func (k ArtifactKind) Ext() string {
	if k == FootprintArtifact {
		return ".kicad_mod"
	}

	return ".kicad_sym"
}

/*
Ensure dst carries the extension for its artifact kind
*/
func ArtifactPath(dst string, kind ArtifactKind) string {
	if strings.HasSuffix(dst, kind.Ext()) {
		return dst
	}

	return dst + kind.Ext()
}

/*
Persist an emitted artifact, returning the path actually written
*/
func WriteArtifact(dst string, kind ArtifactKind, content string) (string, error) {
	path := ArtifactPath(dst, kind)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}

	return path, nil
}
