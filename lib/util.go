package lib

import (
	"bytes"
	"encoding/gob"
	"os"
	"path/filepath"
)

func Exists(path string) bool {
	if _, err := os.Stat(path); err == nil {
		return true
	} else if os.IsNotExist(err) {
		return false
	}

	return true
}

/*
return an encoded object as bytes
*/
func Marshal(v interface{}) ([]byte, error) {
	b := new(bytes.Buffer)
	err := gob.NewEncoder(b).Encode(v)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

/*
return a decoded object from bytes
*/
func Unmarshal(data []byte, v interface{}) error {
	b := bytes.NewBuffer(data)
	return gob.NewDecoder(b).Decode(v)
}

/*
The per-user root where the spec library and search index live
*/
func DefaultLibraryRoot() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	root := filepath.Join(base, "petfilter-libgen")
	if err := os.MkdirAll(root, 0755); err != nil {
		return "", err
	}

	return root, nil
}
