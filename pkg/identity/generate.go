package identity

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_verifier.go github.com/screenlog/screenlog/pkg/identity Verifier
