package path

// RelativeTo computes a relative path that, when joined to other,
// yields the same path as v. Both paths need to have the same anchor.
//
// If walkUp is false, other must be an ancestor of v, or v itself.
// Otherwise ".." components are prepended as needed, as long as the
// part of other that is not shared with v contains no ".." components
// itself. Symbolic links are not taken into account.
func (v *Value) RelativeTo(other *Value, walkUp bool) (*Value, error) {
	if v.flavor != other.flavor {
		return nil, newInvalidArgumentError(ErrorReasonFlavorMismatch, "Cannot compare %s path %#v with %s path %#v", v.flavor.name, v.LiteralString(), other.flavor.name, other.LiteralString())
	}
	if !v.flavor.equal(v.anchor.Drive, other.anchor.Drive) || v.anchor.Root != other.anchor.Root {
		return nil, newInvalidArgumentError(ErrorReasonNotRelative, "Path %#v has a different anchor than path %#v", v.NormalizedString(), other.NormalizedString())
	}

	common := 0
	for common < len(v.simplified) && common < len(other.simplified) && v.flavor.equal(v.simplified[common], other.simplified[common]) {
		common++
	}
	up := other.simplified[common:]
	if len(up) > 0 {
		if !walkUp {
			return nil, newInvalidArgumentError(ErrorReasonNotRelative, "Path %#v is not in the subpath of %#v", v.NormalizedString(), other.NormalizedString())
		}
		for _, component := range up {
			if component == v.flavor.parentToken {
				return nil, newInvalidArgumentError(ErrorReasonNotRelative, "Cannot walk up from path %#v, as the target of %#v is unknown", other.NormalizedString(), component)
			}
		}
	}

	down := v.simplified[common:]
	components := make([]string, 0, len(up)+len(down))
	for range up {
		components = append(components, v.flavor.parentToken)
	}
	components = append(components, down...)
	return newSimplifiedValue(v.flavor, Anchor{}, components, v.joinPolicy), nil
}

// IsRelativeTo returns true if other is an ancestor of v, or v itself.
func (v *Value) IsRelativeTo(other *Value) bool {
	_, err := v.RelativeTo(other, false)
	return err == nil
}
