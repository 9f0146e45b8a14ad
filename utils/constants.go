// File: utils/constants.go
package utils

import "time"

// BookingCachePrefix is the prefix used for Redis booking snapshot keys.
const BookingCachePrefix = "booking:"

// BookingCacheTTL is the time-to-live for booking snapshot entries.
const BookingCacheTTL = 2 * time.Minute

// PaymentSessionPrefix is the prefix for pending holding-fee payment sessions.
const PaymentSessionPrefix = "paysession:"

// PaymentSessionTTL bounds how long a holding-fee payment may stay
// outstanding before the draft expires.
const PaymentSessionTTL = 15 * time.Minute

// BookingLockPrefix is the prefix for per-booking mutation locks.
const BookingLockPrefix = "bookinglock:"

// BookingLockTTL caps how long a single in-flight mutation may hold a
// booking; it guards against a crashed request pinning the record.
const BookingLockTTL = 30 * time.Second
