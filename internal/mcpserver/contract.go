package mcpserver

// EntryFormatContract describes the canonical journal entry format that
// LLM consumers should follow when creating entries.
const EntryFormatContract = `# TIL Entry Format Contract

Every journal entry stored in TIL MUST follow this structure.

## Structure

` + "```" + `markdown
---
title: TIL: one-line summary        # OPTIONAL – used in search and listings
tags:                               # OPTIONAL – YAML list; used for filtering
  - tag-one
  - tag-two
---

## 📝 TIL

What you learned today, in standard Markdown.
` + "```" + `

## Rules

1. **File paths** are ` + "`" + `<category>/<YYYY-MM-DD>.md` + "`" + `: one entry per category per day.
2. **Category** is a single directory name. No nested paths, no ` + "`" + `.` + "`" + ` or ` + "`" + `..` + "`" + `.
3. **YAML frontmatter is optional.** When present, the ` + "`" + `---` + "`" + ` fences must be the
   first thing in the file (no leading blank lines).
4. **Tags** are lowercase, kebab-case (e.g. ` + "`" + `goroutine-leaks` + "`" + `, ` + "`" + `query-planning` + "`" + `).
5. **Without a frontmatter title**, the first ` + "`" + `#` + "`" + ` heading is used as the title.
6. **Encoding** is UTF-8 with a trailing newline.
7. Links worth keeping go through the ` + "`" + `add_link` + "`" + ` tool, which files them into
   the monthly ` + "`" + `YYYY-MM-Links.md` + "`" + ` file; do not hand-edit those files.

## Example

` + "```" + `markdown
---
title: "TIL: context cancellation propagates to children"
tags:
  - context
---

# TIL: context cancellation propagates to children

Cancelling a parent context cancels every context derived from it.
Derived timers are released too, so deferring cancel() is enough.
` + "```" + `
`
