package model

// CartActor identifies whoever owns an open cart: an authenticated user,
// an anonymous session token, or both once a guest logs in.
type CartActor struct {
	UserID *int64
	Token  string
}
