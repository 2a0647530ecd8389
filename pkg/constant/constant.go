package constant

// ContextUserIDKey is the fiber locals key the auth middleware stores the
// authenticated user id under.
const ContextUserIDKey = "userID"
