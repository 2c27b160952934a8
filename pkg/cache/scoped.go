package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// Deployments serving several projects give each its own namespace so
// identically named scenes never share cache entries.
//
// Example usage:
//
//	projKeyer := NewScopedKeyer(NewDefaultKeyer(), "proj:abc123:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SceneKey generates a prefixed key for a stored scene document.
func (k *ScopedKeyer) SceneKey(sceneID string) string {
	return k.prefix + k.inner.SceneKey(sceneID)
}

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(sceneHash, opts)
}
