/*
Package domain contains the core value types of the rewind history manager.

It is kept pure and free of I/O: nothing here writes to a terminal or a file.
Presentation goes through the ports.Reporter sink owned by the caller.

# Key Entities

  - Snapshot: an immutable point-in-time state of the edited content
    (text, cursor position, unsaved flag).
  - Changes: a partial update where every field knows whether it was supplied.
  - Event / Hooks: observability callbacks fired by the timeline.
*/
package domain
