// Package domain contains the core entities shared across the application:
// users, blog posts and school listings. The types here are free of transport
// and storage concerns so every layer can depend on them.
package domain
