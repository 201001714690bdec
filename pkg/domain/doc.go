// Package domain contains the core types shared by the validator, the QR
// generator and its transports: validation outcomes, recovery levels and the
// rendered QR image. They are free of infrastructure concerns so they can be
// shared across packages.
package domain
