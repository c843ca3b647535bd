package formatter

// MergeTag combines the formatter-wide default tag with a per-call tag.
// An empty override, or one equal to the default, yields the default;
// otherwise the result is "default-override".
func MergeTag(defaultTag, overrideTag string) string {
	if overrideTag == "" || overrideTag == defaultTag {
		return defaultTag
	}
	if defaultTag == "" {
		return overrideTag
	}
	return defaultTag + "-" + overrideTag
}
