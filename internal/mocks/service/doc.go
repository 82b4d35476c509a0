// Package service holds testify mocks of the domain service interfaces.
package service
