// Package feedback models comments left on feedback responses: who wrote
// them, which response they belong to, and which participants may see them.
//
// Record is a value object assembled through Builder. Unlike the roster and
// faculty builders, the constructor itself rejects blank required fields:
// a comment detached from its course, session, question, response, or giver
// is meaningless, so the failure surfaces at the earliest possible point.
//
// Visibility is expressed as participant-type lists. When
// VisibilityFollowsQuestion is set the lists are ignored and the owning
// question's visibility applies; the lists then just carry the last
// explicit configuration.
package feedback
