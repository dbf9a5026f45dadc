// tips.go

/**
 * Copyright (C) Naren Yellavula - All Rights Reserved
 *
 * This source code is protected under international copyright law.  All rights
 * reserved and protected by the copyright holders.
 * This file is confidential and only available to authorized individuals with the
 * permission of the copyright holders.  If you encounter this file and do not have
 * permission, please contact the copyright holders and delete this file.
 * The tips are collected from common academic advising practice.
 */

package main

import (
	"math/rand"
)

var tips = []string{
	"Register for prerequisite courses early; they fill up first",
	"Check prerequisites before planning a term, not after",
	"Two heavy project courses in one term is usually one too many",
	"A course nobody requires can still be the one you remember",
	"Talk to students who took the course last year",
	"Office hours are cheaper than retakes",
	"Plan backwards from your capstone, not forwards from intro",
	"Electives are for curiosity, requirements are for scheduling",
	"Discrete math pays rent in every algorithms course",
	"If two sections exist, take the morning one and keep the habit",
	"Read the syllabus before the add/drop deadline, not after",
	"A prerequisite chain is a critical path; treat it like one",
	"Courses with 'Introduction' in the title are rarely easy",
	"Keep one term of slack for the course that surprises you",
	"Study groups form in week one, not week ten",
	"The catalog is a graph; walk it before you pick classes",
	"Ask what a course unlocks, not just what it covers",
	"Summer terms are for the course that blocks everything else",
	"Grades fade, prerequisites compound",
	"When stuck on a plan, write the terms out on paper",
	"Advisors can waive a lot, but not the laws of time",
	"Audit the course you are afraid of before you take it",
	"A skipped prerequisite is a loan with interest",
	"Balance theory-heavy terms with a lab or project course",
	"Never schedule three finals on the same day if you can help it",
	"The shortest path to graduation is rarely the best one",
	"Take the writing-intensive course before your thesis, not with it",
	"Your transcript is read top to bottom; your learning is not",
}

// pickRandomString returns a random string from the provided slice.
// If the slice is empty, it returns an empty string.
func pickRandomString(list []string) string {
	// If the list is empty, return empty string.
	if len(list) == 0 {
		return ""
	}
	// Generate a random index and return the element at that index.
	randomIndex := rand.Intn(len(list))
	return list[randomIndex]
}

func GetRandomTip() string {
	return pickRandomString(tips)
}
