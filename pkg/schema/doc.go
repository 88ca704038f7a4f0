// Package schema is the canonical description of which formatting settings
// exist per element category and what values each accepts. Both the live
// configuration store (gating writes) and the validator (checking whole
// configurations) run their value checks through this package, so an edit
// rejection and a validation violation for the same defect carry the same
// message.
package schema
