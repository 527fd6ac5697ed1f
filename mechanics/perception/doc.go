// Package perception implements a perception mechanic: an
// observer's detection of a signal against distance, concealment, and
// attention, driven by a PerceptionPolicy.
package perception
