// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
)

func TestCacheDetailPageAndGetDetailPage(t *testing.T) {
	// Use the detail page cache
	c := NewCourseDetailCache()
	number := "CSCI300"
	page := "# CSCI300: Introduction to Algorithms"

	// Initially, GetDetailPage should return an empty string for a missing course.
	if got := GetDetailPage(c, number); got != "" {
		t.Errorf("GetDetailPage(%q) = %q; want empty string", number, got)
	}

	// Cache the rendered page.
	CacheDetailPage(c, number, page)

	// Now, GetDetailPage should return the cached page.
	if got := GetDetailPage(c, number); got != page {
		t.Errorf("GetDetailPage(%q) = %q; want %q", number, got, page)
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	number := "CSCI200"
	page := "This detail page should expire soon."

	// Cache the page with short expiration
	c.Set(number, page, 100*time.Millisecond)

	// Immediately after caching, the page should be retrievable.
	if got := GetDetailPage(c, number); got != page {
		t.Errorf("GetDetailPage(%q) = %q; want %q", number, got, page)
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	// Now, the page should have expired and not be retrievable.
	if got := GetDetailPage(c, number); got != "" {
		t.Errorf("After expiration, GetDetailPage(%q) = %q; want empty string", number, got)
	}
}
