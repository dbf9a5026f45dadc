// course.go

/**
 * Copyright (C) Naren Yellavula - All Rights Reserved
 *
 * This source code is protected under international copyright law.  All rights
 * reserved and protected by the copyright holders.
 * This file is confidential and only available to authorized individuals with the
 * permission of the copyright holders.  If you encounter this file and do not have
 * permission, please contact the copyright holders and delete this file.
 */

package main

import (
	"fmt"
	"strings"

	"github.com/cybrota/advisor/avl"
)

// Course is one catalog record: a normalized course number, its title, and
// the normalized numbers of its prerequisites.
type Course struct {
	Number        string
	Title         string
	Prerequisites []string
	// Line is the 1-based line in the source catalog, kept so the editor
	// jump can land on the record.
	Line int
}

// ListEntry renders the course the way the alphanumeric listing prints it
func (c Course) ListEntry() string {
	return c.Number + ": " + c.Title
}

const (
	courseListHeader = "---- Computer Science Course List (Alphanumeric) ----"
	courseListFooter = "-----------------------------------------------------"
)

// formatCourseList renders the full sorted listing between its rulers.
// An empty store yields the load-first hint instead.
func formatCourseList(store *avl.Tree[Course], prefix string) string {
	if store.Len() == 0 {
		return "No courses loaded. Use Option 1 to load data first.\n"
	}

	var b strings.Builder
	b.WriteString(courseListHeader + "\n")
	store.Ascend(func(key string, c Course) bool {
		if prefix == "" || strings.HasPrefix(key, prefix) {
			b.WriteString(c.ListEntry() + "\n")
		}
		return true
	})
	b.WriteString(courseListFooter + "\n")
	return b.String()
}

// formatCourseInfo renders the single-course view: the course line, then its
// prerequisites with titles resolved against the store, or "None".
func formatCourseInfo(store *avl.Tree[Course], c Course) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Course: %s - %s\n", c.Number, c.Title)

	if len(c.Prerequisites) == 0 {
		b.WriteString("Prerequisites: None\n")
		return b.String()
	}

	b.WriteString("Prerequisites:\n")
	for _, p := range c.Prerequisites {
		if pc, ok := store.Find(p); ok {
			fmt.Fprintf(&b, "  - %s - %s\n", p, pc.Title)
		} else {
			fmt.Fprintf(&b, "  - %s - (title unknown)\n", p)
		}
	}
	return b.String()
}

func courseNotFoundMessage(key string) string {
	return fmt.Sprintf("Course '%s' was not found. Please check the course number and try again.", key)
}

// courseDetailMarkdown builds the markdown detail page shown in the viewport
// pane. Prerequisite titles are resolved against the store; the dependency
// index contributes the reverse view (which courses require this one).
func courseDetailMarkdown(store *avl.Tree[Course], index *PrereqIndex, c Course) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s: %s\n\n", c.Number, c.Title)

	b.WriteString("## Prerequisites\n\n")
	if len(c.Prerequisites) == 0 {
		b.WriteString("None. This course can be taken right away.\n")
	} else {
		for _, p := range c.Prerequisites {
			if pc, ok := store.Find(p); ok {
				fmt.Fprintf(&b, "- `%s` %s\n", p, pc.Title)
			} else {
				fmt.Fprintf(&b, "- `%s` (title unknown)\n", p)
			}
		}
	}

	if index != nil {
		if required := index.RequiredBy(c.Number); len(required) > 0 {
			b.WriteString("\n## Required by\n\n")
			for _, r := range required {
				if rc, ok := store.Find(r); ok {
					fmt.Fprintf(&b, "- `%s` %s\n", r, rc.Title)
				} else {
					fmt.Fprintf(&b, "- `%s`\n", r)
				}
			}
		}
		if unknown := index.UnknownPrereqs(c); len(unknown) > 0 {
			b.WriteString("\n## Catalog gaps\n\n")
			for _, u := range unknown {
				fmt.Fprintf(&b, "- `%s` is listed as a prerequisite but is not in the catalog\n", u)
			}
		}
	}

	if c.Line > 0 {
		fmt.Fprintf(&b, "\n---\n\nCatalog line %d\n", c.Line)
	}
	return b.String()
}
