package file

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jsphweid/songbook/constants"
	"github.com/jsphweid/songbook/model"
	"github.com/jsphweid/songbook/util"
	"github.com/pkg/errors"
)

func CreateFileNumMap(paths []string) model.FileNumToPath {
	res := make(model.FileNumToPath)
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}

// SongFileName names a song file "<artist> - <title>". Songs missing either
// field get a random name.
func SongFileName(title, artist string) string {
	name := util.SafeFileName(strings.TrimSpace(artist) + " - " + strings.TrimSpace(title))
	if strings.TrimSpace(title) == "" || strings.TrimSpace(artist) == "" || name == "" {
		name = uuid.NewString()
	}
	return name + constants.ChordProExt
}

// WriteNew writes data to dir/name without overwriting an existing file.
// On a clash a random suffix is added to the name. It returns the path
// actually written.
func WriteNew(dir, name string, data []byte) (string, error) {
	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if os.IsExist(err) {
		ext := filepath.Ext(name)
		path = filepath.Join(dir, strings.TrimSuffix(name, ext)+" ("+uuid.NewString()[:8]+")"+ext)
		f, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	}
	if err != nil {
		return "", errors.Wrapf(err, "couldn't create file %v", path)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return "", errors.Wrapf(err, "write failed for file %v", path)
	}
	return path, nil
}
