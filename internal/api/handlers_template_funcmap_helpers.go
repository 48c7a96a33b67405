package api

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

func newTemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"formatDate":    formatTemplateDate,
		"formatFloat":   formatTemplateFloat,
		"t":             templateTranslate,
		"exerciseLabel": templateExerciseLabel,
		"isActiveRoute": isActiveTemplateRoute,
		"dict":          templateDict,
	}
}

func formatTemplateDate(value time.Time, layout string) string {
	if value.IsZero() {
		return ""
	}
	return value.Format(layout)
}

func formatTemplateFloat(value float64) string {
	return fmt.Sprintf("%.1f", value)
}

func templateTranslate(messages map[string]string, key string) string {
	return translateMessage(messages, key)
}

func templateExerciseLabel(messages map[string]string, name string) string {
	return localizedExerciseName(messages, name)
}

func isActiveTemplateRoute(currentPath string, route string) bool {
	path := strings.TrimSpace(currentPath)
	if path == "" {
		return route == "/"
	}
	if route == "/" {
		return path == "/" || strings.HasPrefix(path, "/?")
	}
	return path == route || strings.HasPrefix(path, route+"?") || strings.HasPrefix(path, route+"/")
}

func templateDict(values ...any) (map[string]any, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("dict requires key-value pairs")
	}
	result := make(map[string]any, len(values)/2)
	for index := 0; index < len(values); index += 2 {
		key, ok := values[index].(string)
		if !ok {
			return nil, fmt.Errorf("dict key at index %d is not a string", index)
		}
		result[key] = values[index+1]
	}
	return result, nil
}
