//go:build patterndebug

package pattern

const debugProbes = true
