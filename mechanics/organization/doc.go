// Package organization implements an organization mechanic:
// membership, cohesion, and leadership dynamics for a group of
// entities, driven by an OrganizationPolicy.
package organization
