/*
Package ports defines the driven ports (interfaces) of the rewind history manager.

These interfaces decouple the core from presentation, so the timeline and the
kitchen can be exercised in tests without capturing console output.

# Key Interfaces

  - Reporter: receives formatted text for display (terminal, markdown, memory).
*/
package ports
