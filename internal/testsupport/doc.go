// Package testsupport holds fixtures shared by package tests: temp-dir backed
// configs and small filesystem helpers.
package testsupport
