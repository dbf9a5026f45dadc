// cache.go

/**
 * Copyright 2025 (C) Naren Yellavula - All Rights Reserved
 *
 * This source code is protected under international copyright law.  All rights
 * reserved and protected by the copyright holders.
 * This file is confidential and only available to authorized individuals with the
 * permission of the copyright holders.  If you encounter this file and do not have
 * permission, please contact the copyright holders and delete this file.
 */

package main

import (
	"github.com/patrickmn/go-cache"
	"time"
)

const (
	// Cache rendered detail pages for 30 minutes instead of default (which can be much longer)
	detailCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	detailCacheCleanup = 5 * time.Minute
)

// NewCourseDetailCache creates a cache optimized for rendered course detail pages
func NewCourseDetailCache() *cache.Cache {
	return cache.New(detailCacheExpiration, detailCacheCleanup)
}

func CacheDetailPage(c *cache.Cache, number string, page string) {
	// Use Set instead of Add to allow overwriting (cheap for repeated lookups)
	c.Set(number, page, detailCacheExpiration)
}

func GetDetailPage(c *cache.Cache, number string) string {
	val, ok := c.Get(number)
	if !ok {
		return ""
	}
	return val.(string)
}
