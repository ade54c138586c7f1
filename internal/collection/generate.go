package collection

//go:generate mockgen -destination=mocks/mock_collection.go -package=mocks listsync/internal/collection IdentityStore,Membership,ItemMatcher
