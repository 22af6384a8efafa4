package core

// Entity is a unique identifier for a game object
// Zero is never issued and marks an absent entity
type Entity uint64
