package archive

import (
	"archive/zip"
	"bytes"
	"time"

	"github.com/jsphweid/midisolo/errs"
	"github.com/jsphweid/midisolo/model"
	"github.com/pkg/errors"
)

// Build packs variants into one deflated zip, keeping their order. Two
// variants with the same name are an error.
func Build(variants []model.Variant, baseName string) (*model.Result, error) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	modified := time.Now()

	seen := make(map[string]bool, len(variants))
	fileNames := make([]string, 0, len(variants))
	for _, v := range variants {
		if seen[v.Name] {
			return nil, errors.Wrapf(errs.ErrArchive, "duplicate entry %q", v.Name)
		}
		seen[v.Name] = true

		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     v.Name,
			Modified: modified,
			Method:   zip.Deflate,
		})
		if err != nil {
			return nil, errors.Wrapf(errs.ErrArchive, "create %q: %v", v.Name, err)
		}
		if _, err := w.Write(v.Data); err != nil {
			return nil, errors.Wrapf(errs.ErrArchive, "write %q: %v", v.Name, err)
		}
		fileNames = append(fileNames, v.Name)
	}

	if err := zw.Close(); err != nil {
		return nil, errors.Wrapf(errs.ErrArchive, "finish: %v", err)
	}

	return &model.Result{
		BaseName:  baseName,
		FileNames: fileNames,
		Zip:       buf.Bytes(),
	}, nil
}
