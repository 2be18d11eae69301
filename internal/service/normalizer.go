package service

import (
	"strings"

	"github.com/MKhiriev/pi-settings-sync/models"
)

// urlSchemeMarker marks strings that are scheme-qualified references
// (e.g. "git://", "https://") rather than filesystem paths.
const urlSchemeMarker = "://"

// NormalizePath rewrites a single path string into forward-slash form.
//
// Strings containing "://" are returned unchanged. Otherwise every backslash
// becomes a forward slash and runs of slashes collapse into one, so the
// result never contains "//".
func NormalizePath(value string) string {
	if strings.Contains(value, urlSchemeMarker) {
		return value
	}

	value = strings.ReplaceAll(value, `\`, "/")
	for strings.Contains(value, "//") {
		value = strings.ReplaceAll(value, "//", "/")
	}

	return value
}

// NormalizeDocument returns a deep copy of doc whose path-bearing fields have
// been passed through [NormalizePath]. doc itself is never modified.
//
// Path-bearing fields are [models.TopLevelPathFields] on the document and
// [models.PackagePathFields] on every object inside [models.PackagesField].
// Fields that are absent or not arrays, non-string array items, and
// non-object package entries are left as they are.
func NormalizeDocument(doc models.Value) models.Value {
	out := doc.Clone()
	if out.Kind() != models.KindObject {
		return out
	}

	normalizePathFields(&out, models.TopLevelPathFields)

	packages, ok := out.Get(models.PackagesField)
	if !ok || packages.Kind() != models.KindArray {
		return out
	}

	for i, pkg := range packages.Items() {
		if pkg.Kind() != models.KindObject {
			continue
		}
		normalizePathFields(&pkg, models.PackagePathFields)
		packages.SetItem(i, pkg)
	}
	out.Set(models.PackagesField, packages)

	return out
}

func normalizePathFields(obj *models.Value, fields []string) {
	for _, field := range fields {
		list, ok := obj.Get(field)
		if !ok || list.Kind() != models.KindArray {
			continue
		}

		for i, item := range list.Items() {
			if s, isString := item.AsString(); isString {
				list.SetItem(i, models.String(NormalizePath(s)))
			}
		}
		obj.Set(field, list)
	}
}
