// Package content declares the named queries the site runs against the
// content store. Each query fixes the projected fields and how deep
// references are expanded.
package content

import "luxe_estate/internal/domain"

// FeaturedLimit caps the featured property and testimonial slices.
const FeaturedLimit = 6

const imageAsset = `asset->{
      _id,
      url,
      metadata {
        lqip,
        dimensions { width, height }
      }
    }`

// PropertiesQuery lists every property, newest first, with a one-level agent summary.
var PropertiesQuery = domain.Query{
	Name: "properties",
	Text: `*[_type == "property"] | order(publishedAt desc) {
  _id,
  _createdAt,
  title,
  "slug": slug.current,
  propertyType,
  status,
  price,
  currency,
  featured,
  mainImage {
    ` + imageAsset + `,
    alt
  },
  description,
  address,
  specifications,
  amenities,
  agent->{
    _id,
    name,
    "slug": slug.current,
    image {
      asset->{ url },
      alt
    }
  },
  publishedAt
}`,
}

// FeaturedPropertiesQuery returns at most six featured properties, newest first.
var FeaturedPropertiesQuery = domain.Query{
	Name: "featured-properties",
	Text: `*[_type == "property" && featured == true] | order(publishedAt desc) [0...6] {
  _id,
  title,
  "slug": slug.current,
  propertyType,
  status,
  price,
  currency,
  mainImage {
    ` + imageAsset + `,
    alt
  },
  address,
  specifications
}`,
}

// PropertyQuery fetches one property by slug with its gallery and agent contact details.
var PropertyQuery = domain.Query{
	Name:   "property",
	Params: []string{"slug"},
	Text: `*[_type == "property" && slug.current == $slug][0] {
  _id,
  title,
  "slug": slug.current,
  propertyType,
  status,
  price,
  currency,
  featured,
  mainImage {
    ` + imageAsset + `,
    alt,
    hotspot,
    crop
  },
  gallery[] {
    ` + imageAsset + `,
    alt,
    hotspot,
    crop
  },
  description,
  address,
  specifications,
  amenities,
  agent->{
    _id,
    name,
    title,
    "slug": slug.current,
    image {
      asset->{ url },
      alt
    },
    email,
    phone,
    bio
  },
  publishedAt
}`,
}

// PropertySlugsQuery enumerates detail routes.
var PropertySlugsQuery = domain.Query{
	Name: "property-slugs",
	Text: `*[_type == "property" && defined(slug.current)]{
  "slug": slug.current
}`,
}

// AgentsQuery lists agents alphabetically.
var AgentsQuery = domain.Query{
	Name: "agents",
	Text: `*[_type == "agent"] | order(name asc) {
  _id,
  name,
  "slug": slug.current,
  title,
  image {
    ` + imageAsset + `,
    alt
  },
  bio,
  email,
  phone,
  specialties,
  experience,
  socialMedia
}`,
}

// TestimonialsQuery returns at most six featured testimonials, newest first.
var TestimonialsQuery = domain.Query{
	Name: "testimonials",
	Text: `*[_type == "testimonial" && featured == true] | order(publishedAt desc) [0...6] {
  _id,
  name,
  role,
  image {
    asset->{ url },
    alt
  },
  content,
  rating,
  property->{
    title,
    "slug": slug.current
  }
}`,
}

// SiteQueries is every query the public site issues.
var SiteQueries = []domain.Query{
	PropertiesQuery,
	FeaturedPropertiesQuery,
	PropertyQuery,
	PropertySlugsQuery,
	AgentsQuery,
	TestimonialsQuery,
}
