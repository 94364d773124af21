package content

import "luxe_estate/internal/domain"

// The mirror queries export complete documents. References stay unexpanded
// and are carried as ids so the read model can join them itself.

var MirrorAgentsQuery = domain.Query{
	Name: "mirror-agents",
	Text: `*[_type == "agent"] {
  _id,
  _updatedAt,
  name,
  "slug": slug.current,
  title,
  image {
    ` + imageAsset + `,
    alt,
    hotspot,
    crop
  },
  bio,
  email,
  phone,
  specialties,
  experience,
  socialMedia
}`,
}

var MirrorPropertiesQuery = domain.Query{
	Name: "mirror-properties",
	Text: `*[_type == "property"] {
  _id,
  _createdAt,
  _updatedAt,
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
  "agentId": agent._ref,
  publishedAt
}`,
}

var MirrorTestimonialsQuery = domain.Query{
	Name: "mirror-testimonials",
	Text: `*[_type == "testimonial"] {
  _id,
  _updatedAt,
  name,
  role,
  image {
    ` + imageAsset + `,
    alt
  },
  content,
  rating,
  featured,
  "propertyId": property._ref,
  publishedAt
}`,
}
