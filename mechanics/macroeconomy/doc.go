// Package macroeconomy implements a macroeconomy mechanic:
// aggregate supply/demand and price-level dynamics for one market,
// driven by an EconomicPolicy.
package macroeconomy
