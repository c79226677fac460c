package workspace

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/restpad/internal/errdef"
)

// Load reads a workspace document from path. A missing file is not an
// error: it yields a fresh empty workspace so first runs need no setup.
func Load(path string) (*Workspace, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New("default"), nil
	}
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeFilesystem, err, "read workspace %q", path)
	}

	var ws Workspace
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, errdef.Wrap(errdef.CodeParse, err, "parse workspace %q", path)
	}
	if ws.Name == "" {
		ws.Name = "default"
	}
	return &ws, nil
}

// Save writes the workspace document atomically: marshal to a sibling temp
// file, then rename over the target.
func Save(path string, ws *Workspace) error {
	data, err := yaml.Marshal(ws)
	if err != nil {
		return errdef.Wrap(errdef.CodeWorkspace, err, "encode workspace")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "create workspace dir %q", dir)
	}

	tmp, err := os.CreateTemp(dir, ".workspace-*.yaml")
	if err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "create temp workspace file")
	}
	tmpName := tmp.Name()
	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		os.Remove(tmpName)
		if writeErr != nil {
			return errdef.Wrap(errdef.CodeFilesystem, writeErr, "write workspace")
		}
		return errdef.Wrap(errdef.CodeFilesystem, closeErr, "write workspace")
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errdef.Wrap(errdef.CodeFilesystem, err, "replace workspace %q", path)
	}
	return nil
}
