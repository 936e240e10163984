// Package seed populates a running jim-carrier backend with demo users,
// listings, orders and reviews through its public REST API.
package seed
