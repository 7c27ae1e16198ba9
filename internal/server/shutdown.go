package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// shutdownModules stops the booted modules in reverse boot order and joins
// their errors.
func (s *Server) shutdownModules(ctx context.Context) error {
	var errs []error
	for i := len(s.booted) - 1; i >= 0; i-- {
		mod := s.booted[i]
		slog.Debug("Shutting down module", "module", mod.Name())
		if err := mod.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown module %s: %w", mod.Name(), err))
		}
	}
	s.booted = nil
	s.Registry.Shutdown()
	return errors.Join(errs...)
}
