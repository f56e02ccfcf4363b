package common

// UserIDContextKey carries the authenticated user's ID from the admin auth
// middleware to downstream handlers.
const UserIDContextKey = "authenticated_user_id"
