// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/bpmlabs/igniter/internal/core/domain"
)

// Renderer produces the text of a single project artifact from a template
// context.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Render resolves the template for the named artifact file and executes
	// it against data. It returns domain.ErrUnknownFile for names outside the
	// generated artifact set.
	Render(ctx context.Context, name string, data domain.TemplateContext) (string, error)
}
