package util

// Namespaced prefixes key with ns and a ':' separator. An empty ns leaves
// the key untouched so un-namespaced caches use the bare generated keys.
func Namespaced(ns, key string) string {
	if ns == "" {
		return key
	}
	return ns + ":" + key
}
