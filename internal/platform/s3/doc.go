// Package s3 provides the object storage client used to persist pass reports.
//
// The client is built from the shared AWS configuration and can be pointed
// at an S3-compatible endpoint, in which case path-style addressing is used.
package s3
