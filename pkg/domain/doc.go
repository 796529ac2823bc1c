// Package domain contains the core entities of the specialist back office:
// specialists, their media and offering links, the service offering catalog
// and the platform fee tiers. The types are free of infrastructure concerns so
// they can be shared between storage, services and transport layers.
package domain
