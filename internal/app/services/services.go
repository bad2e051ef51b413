package services

// Services defined in this package:
// - CourseService: listing, lookup and category statistics over the course store
// - ContextAssembler: renders courses as plain text for completion prompts
// - ChatService: answers user questions through the configured completion provider
