//go:build !cgo

package window

import (
	"context"
	"errors"

	"wirecube/internal/mesh"
)

func Run(_ context.Context, _ *mesh.Mesh, _ Options) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1), use -headless instead")
}
