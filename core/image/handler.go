package image

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/studyline/lessons-api/api/web"
	"github.com/studyline/lessons-api/api/weberr"
)

// HandleShow serves a lesson image from dir. The filename is reduced
// to its base so a crafted path cannot escape the directory.
func HandleShow(dir string) web.Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
		name := filepath.Base(web.Param(r, "file"))
		path := filepath.Join(dir, name)

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			if err == nil {
				err = fmt.Errorf("image path %q is a directory", name)
			}
			return weberr.NotFound(err, "Image not found")
		}

		http.ServeFile(w, r, path)
		return nil
	}
}
