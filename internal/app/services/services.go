package services

// Services defined in this package:
// - MemberService: read-only access to stored members
