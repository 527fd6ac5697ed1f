// Package securitization implements a securitization
// mechanic: collateral valuation and backed-instrument issuance, driven
// by a CollateralPolicy and an IssuancePolicy.
package securitization
