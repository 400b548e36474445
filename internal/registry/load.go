package registry

import (
	"context"

	"github.com/specialistvlad/urlmap/internal/config"
	"github.com/specialistvlad/urlmap/internal/ctxlog"
)

// FromModel builds a Registry from every namespace definition in the model,
// in model order.
func FromModel(ctx context.Context, model *config.Model) (*Registry, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Building registry from config model...", "definitions", len(model.Namespaces))

	b := NewBuilder()
	for _, def := range model.Namespaces {
		logger.Debug("Registering namespace.", "namespace", def.Name, "url", def.URL, "source", def.Source)
		err := b.RegisterEntry(Entry{
			Namespace:   def.Name,
			URL:         def.URL,
			Description: def.Description,
			Source:      def.Source,
		})
		if err != nil {
			return nil, err
		}
	}

	reg := b.Build()
	logger.Debug("Registry built.", "namespaces", reg.Len())
	return reg, nil
}
