package interfaces

// IPasswordHasher is the authentication collaborator. The algorithm is opaque
// to callers.
type IPasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}
