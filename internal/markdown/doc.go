// Package markdown renders article bodies and rich text fields to HTML for
// preview surfaces. Rendering is opt-in per field; stored content stays
// markdown so the backend remains the source of truth.
package markdown
