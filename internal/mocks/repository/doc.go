// Package repository holds testify mocks of the persistence interfaces.
package repository
