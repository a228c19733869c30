package shopify

const productFields = `
  id
  title
  handle
  description
  descriptionHtml
  productType
  tags
  vendor
  availableForSale
  createdAt
  updatedAt
  images(first: 10) {
    edges {
      node {
        id
        url
        altText
        width
        height
      }
    }
  }
  variants(first: 100) {
    edges {
      node {
        id
        title
        availableForSale
        sku
        requiresShipping
        taxable
        weight
        weightUnit
        price {
          amount
          currencyCode
        }
        compareAtPrice {
          amount
          currencyCode
        }
      }
    }
  }`

const getProductsQuery = `
query GetProducts($first: Int!, $after: String) {
  products(first: $first, after: $after) {
    edges {
      cursor
      node {` + productFields + `
      }
    }
    pageInfo {
      hasNextPage
      hasPreviousPage
    }
  }
}`

const getProductByHandleQuery = `
query GetProductByHandle($handle: String!) {
  productByHandle(handle: $handle) {` + productFields + `
  }
}`

const getCollectionsQuery = `
query GetCollections($first: Int!, $after: String) {
  collections(first: $first, after: $after) {
    edges {
      cursor
      node {
        id
        title
        handle
        description
        descriptionHtml
        updatedAt
        image {
          id
          url
          altText
          width
          height
        }
      }
    }
    pageInfo {
      hasNextPage
      hasPreviousPage
    }
  }
}`

const getCollectionByHandleQuery = `
query GetCollectionByHandle($handle: String!, $productCount: Int!) {
  collectionByHandle(handle: $handle) {
    id
    title
    handle
    description
    descriptionHtml
    updatedAt
    image {
      id
      url
      altText
      width
      height
    }
    products(first: $productCount) {
      edges {
        node {` + productFields + `
        }
      }
    }
  }
}`
