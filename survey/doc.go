// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package survey defines the survey record and the operations on its
demographics and question list.

# Survey Record

A Survey is stored as one element of the JSON array kept under the
surveys key (see package store):

	{
	  "id": "…", "name": "…", "owner": "…",
	  "creationDate": "…", "lastModified": "…",
	  "demographics": [{"id": "age", "label": "Age", "ranges": [...]}],
	  "customInformation": "…",
	  "questions": [...],
	  "starred": false
	}

Demographic charts are edited through package session and written back
with UpsertDemographic. RemoveDemographics deletes several cards at once.

# Questions

Supported types: multiple-choice, slider, numeric, true-false. AddQuestion
and UpdateQuestion fill missing fields from the type's default config.
MoveQuestion reorders by drag-and-drop ids (active → over).

# Listing

List filters (starred, name search) and sorts by last_modified (default),
name or created.
*/
package survey
