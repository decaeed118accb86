// Package domain holds the GORM models shared by the resource packages and
// the small request types the middleware needs.
//
// Every table carries a version column used for optimistic concurrency. All
// belongs-to relations are real foreign keys that restrict deletes of the
// parent. Has-many relations point at the *Ref types so the foreign key is
// always declared once, on the child.
package domain
