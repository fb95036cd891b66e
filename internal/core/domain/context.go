package domain

// TemplateContext is the flat variable mapping consumed by artifact
// rendering. Values are strings except "dependencies", which carries the
// ordered dependency list. A context is built fresh for every request and
// never shared or mutated afterwards.
type TemplateContext map[string]any
