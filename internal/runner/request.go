package runner

import (
	"strings"

	"github.com/Cyclone1070/yaget/internal/provider"
	"github.com/Cyclone1070/yaget/internal/scan"
)

// BuildRequest turns one annotation unit into the structured request handed
// to the generation collaborator. The context window is flattened with
// newlines; the unit itself is left untouched.
func BuildRequest(unit scan.AnnotationUnit) *provider.GenerationRequest {
	return &provider.GenerationRequest{
		MarkerText:  unit.MarkerLine,
		FilePath:    unit.SourceFile,
		ContextText: strings.Join(unit.Context, "\n"),
	}
}
